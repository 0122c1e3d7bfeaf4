// Package graphic decodes the pictures embedded in RTF documents.
//
// RTF stores pictures as hex or binary blobs with a format hint (\pngblip,
// \jpegblip, \dibitmap, \emfblip, \wmetafile). A [Decoder] identifies the
// actual format from the data, measures raster images and returns a
// [Graphic]. The [Cache] wraps a decoder and returns the same *Graphic for
// identical content, keyed by a BLAKE3 hash, so that repeated pictures (a
// logo in every header, for example) are decoded and stored once.
package graphic
