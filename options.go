package rtfimport

import (
	"context"
	"log/slog"

	"github.com/tsawler/rtfimport/docprops"
	"github.com/tsawler/rtfimport/graphic"
	"github.com/tsawler/rtfimport/importer"
	"github.com/tsawler/rtfimport/ole"
)

// ExtractOptions holds configuration for an import.
type ExtractOptions struct {
	ctx    context.Context
	logger *slog.Logger

	// Import behavior
	paste             bool
	codePage          int
	firstRunException func(hasTable, hasColumns bool) bool

	// Services
	graphics       graphic.Decoder
	objects        ole.Container
	properties     docprops.Store
	classification docprops.ClassificationChecker

	// Output
	embedImages bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		ctx:      context.Background(),
		codePage: 1252,
	}
}

// clone creates a copy of ExtractOptions. Services are shared, not copied.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}

// importerOptions converts the options for the importer package.
func (o ExtractOptions) importerOptions() importer.Options {
	return importer.Options{
		Logger:            o.logger,
		Paste:             o.paste,
		DefaultCodePage:   o.codePage,
		Graphics:          o.graphics,
		Objects:           o.objects,
		Properties:        o.properties,
		Classification:    o.classification,
		FirstRunException: o.firstRunException,
	}
}
