package rtftok

// Kind classifies a control word.
type Kind int

const (
	KindUnknown     Kind = iota
	KindFlag             // \pard: changes state, parameter ignored
	KindDestination      // \fonttbl: switches the group's destination
	KindSymbol           // \par, \tab, \~: stands for a character or break
	KindToggle           // \b, \b0: on unless the parameter is 0
	KindValue            // \fs24: carries a numeric value
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindDestination:
		return "destination"
	case KindSymbol:
		return "symbol"
	case KindToggle:
		return "toggle"
	case KindValue:
		return "value"
	}
	return "unknown"
}

// Keyword is a keyword table entry.
type Keyword struct {
	Kind Kind
	// Default is the parameter used when the control word has none.
	Default int
}

var keywords = map[string]Keyword{}

// Lookup returns the table entry for a control word name.
func Lookup(name string) (Keyword, bool) {
	kw, ok := keywords[name]
	return kw, ok
}

func init() {
	for _, n := range destinationWords {
		keywords[n] = Keyword{Kind: KindDestination}
	}
	for _, n := range flagWords {
		keywords[n] = Keyword{Kind: KindFlag}
	}
	for _, n := range symbolWords {
		keywords[n] = Keyword{Kind: KindSymbol}
	}
	for _, n := range toggleWords {
		keywords[n] = Keyword{Kind: KindToggle, Default: 1}
	}
	for _, n := range valueWords {
		keywords[n] = Keyword{Kind: KindValue}
	}
	for n, def := range valueDefaults {
		keywords[n] = Keyword{Kind: KindValue, Default: def}
	}
}

var destinationWords = []string{
	// tables
	"fonttbl", "colortbl", "stylesheet", "listtable", "listoverridetable",
	"revtbl", "list", "listlevel", "listname", "listoverride", "lfolevel",
	"leveltext", "levelnumbers", "listpicture",
	// document information
	"info", "author", "operator", "title", "subject", "keywords", "doccomm",
	"comment", "company", "creatim", "revtim", "printim", "buptim", "userprops",
	"propname", "staticval", "docvar", "generator",
	// fields and form fields
	"field", "fldinst", "fldrslt", "formfield", "datafield", "ffname",
	"ffdeftext", "ffformat", "ffhelptext", "ffstattext", "ffentrymcr",
	"ffexitmcr", "ffl",
	// sub-streams
	"footnote", "header", "headerl", "headerr", "headerf", "footer", "footerl",
	"footerr", "footerf", "annotation", "atnid", "atnauthor", "atndate",
	"atnref", "atrfstart", "atrfend",
	// bookmarks and index entries
	"bkmkstart", "bkmkend", "tc", "tcn", "xe",
	// pictures, shapes and objects
	"pict", "picprop", "shppict", "nonshppict", "shp", "shpgrp", "shpinst",
	"shptxt", "shprslt", "sp", "sn", "sv", "object", "objdata", "objclass",
	"result", "do", "dptxbxtext", "background",
	// math
	"mmath", "moMath", "moMathPara", "mr", "mf", "mfPr", "mnum", "mden",
	"msSup", "msSupPr", "msSub", "msSubPr", "msSubSup", "msSubSupPr", "msPre",
	"msPrePr", "me", "msup", "msub", "mrad", "mradPr", "mdeg", "md", "mdPr",
	"mnary", "mnaryPr", "mfunc", "mfuncPr", "mfName", "mlimLow", "mlimLowPr",
	"mlimUpp", "mlimUppPr", "mlim", "macc", "maccPr", "mbar", "mbarPr", "mbox",
	"mboxPr", "mborderBox", "mborderBoxPr", "meqArr", "meqArrPr", "mgroupChr",
	"mgroupChrPr", "mm", "mmPr", "mmr", "mphant", "mphantPr", "mctrlPr", "mrPr",
	"mchr", "mbegChr", "mendChr", "msepChr", "mpos", "mtype", "mlimLoc",
	"mgrow", "msubHide", "msupHide", "mdegHide", "mmathPr",
	// old style numbering
	"pn", "pntxta", "pntxtb", "pntext", "listtext",
	// misc
	"falt", "upr", "ud", "nesttableprops", "nonesttables", "xmlnstbl",
	"themedata", "colorschememapping", "datastore", "latentstyles", "rsidtbl",
	"pgdsctbl", "fchars", "lchars", "pnseclvl", "wgrffmtfilter", "panose",
	"fname", "ftnsep", "ftnsepc", "aftnsep", "aftnsepc", "protusertbl",
	"xform", "template", "hlinkbase", "defchp", "defpap", "passwordhash",
}

var flagWords = []string{
	// paragraph
	"pard", "ql", "qc", "qr", "qj", "qd", "keep", "keepn", "pagebb", "intbl",
	"ltrpar", "rtlpar", "widctlpar", "nowidctlpar", "contextualspace",
	"nosupersub", "super", "sub", "ulnone", "noproof",
	// character
	"plain", "ltrch", "rtlch", "loch", "hich", "dbch",
	// tabs
	"tqr", "tqc", "tqdec", "tldot", "tlhyph", "tlul", "tlth", "tlmdot",
	"tleq",
	// table rows and cells
	"trowd", "trqc", "trql", "trqr", "trhdr", "trkeep", "ltrrow", "rtlrow",
	"clvmgf", "clvmrg", "clmgf", "clmrg", "clvertalt", "clvertalc",
	"clvertalb", "cltxlrtb", "cltxtbrl", "cltxbtlr", "clNoWrap",
	// borders
	"brdrt", "brdrl", "brdrb", "brdrr", "box", "brdrbtw", "clbrdrt",
	"clbrdrl", "clbrdrb", "clbrdrr", "trbrdrt", "trbrdrl", "trbrdrb",
	"trbrdrr", "trbrdrh", "trbrdrv", "pgbrdrt", "pgbrdrl", "pgbrdrb",
	"pgbrdrr", "chbrdr", "brdrs", "brdrth", "brdrdb", "brdrdot", "brdrdash",
	"brdrdashd", "brdrdashdd", "brdrtriple", "brdrwavy", "brdrinset",
	"brdroutset", "brdremboss", "brdrengrave", "brdrnone", "brdrnil",
	"brdrhair", "brdrsh",
	// sections and document
	"sectd", "sbknone", "sbkcol", "sbkpage", "sbkeven", "sbkodd", "titlepg",
	"landscape", "lndscpsxn", "ltrsect", "rtlsect", "pgndec", "pgnucrm",
	"pgnlcrm", "pgnucltr", "pgnlcltr", "pgnrestart", "pgncont", "linerestart",
	"lineppage", "linecont", "vertalt", "vertalc", "vertalb", "vertalj",
	"ansi", "mac", "pc", "pca", "htmautsp", "widowctrl", "gutterprl",
	"ftnbj", "enddoc", "aenddoc", "ftnalt", "margmirror",
	// font families
	"fnil", "froman", "fswiss", "fmodern", "fscript", "fdecor", "ftech",
	"fbidi",
	// frames
	"phmrg", "phpg", "phcol", "pvmrg", "pvpg", "pvpara", "posxc", "posxi",
	"posxo", "posxl", "posxr", "posyc", "posyt", "posyb", "posyin", "posyout",
	"nowrap", "overlay", "wraparound", "wraptight", "wrapthrough",
	"absnoovrlp",
	// pictures, shapes and objects
	"pngblip", "jpegblip", "emfblip", "wmetafile", "dibitmap", "wbitmap",
	"macpict", "shpbxpage", "shpbxmargin", "shpbxcolumn", "shpbxignore",
	"shpbypage", "shpbymargin", "shpbypara", "shpbyignore", "shplockanchor",
	"dpline", "dprect", "dpellipse", "dptxbx", "dppolyline", "dproundr",
	"objemb", "objlink", "objautlink", "objsub", "objpub", "objicemb",
	"objhtml", "objocx", "objupdate",
	// lists and numbering
	"listhybrid", "listsimple", "listoverridestartat", "pnlvlblt",
	"pnlvlbody", "pnlvlcont", "pndec", "pnucrm", "pnlcrm", "pnucltr",
	"pnlcltr", "pnord", "pnordt", "pncard", "pnhang",
	// fields
	"fldlock", "fldedit", "flddirty", "fldpriv",
	// styles
	"sqformat", "shidden", "ssemihidden", "slocked", "sautoupd", "sadditive",
	"spersonal", "scompose", "sreply",
}

var symbolWords = []string{
	"par", "sect", "cell", "nestcell", "row", "nestrow", "tab", "line", "page",
	"column", "emdash", "endash", "emspace", "enspace", "qmspace", "bullet",
	"lquote", "rquote", "ldblquote", "rdblquote", "chftn", "chftnsep",
	"chftnsepc", "chatn", "chdate", "chtime", "chpgn", "zwj", "zwnj", "ltrmark",
	"rtlmark", "zwbo", "zwnbo", "softline", "softpage", "softcol", "softlheight",
	"~", "-", "_", "\\", "{", "}", "*", ":", "|",
}

var toggleWords = []string{
	"b", "i", "ul", "uld", "uldash", "uldashd", "uldashdd", "uldb", "ulhwave",
	"ulldash", "ulth", "ulthd", "ulthdash", "ulthdashd", "ulthdashdd",
	"ulthldash", "ululdbwave", "ulw", "ulwave", "ab", "ai", "outl", "shad", "v",
	"strike", "striked", "scaps", "impr", "caps", "embo", "deleted", "revised",
	"sbauto", "saauto", "facingp", "hyphauto", "hyphcaps", "hyphpar",
	"accnone", "accdot", "acccomma", "acccircle", "accunderdot", "mnor",
	"sunhideused",
}

var valueWords = []string{
	// character
	"f", "af", "afs", "cf", "cb", "highlight", "chcbpat", "chcfpat",
	"chshdng", "lang", "langfe", "langnp", "langfenp", "alang", "expnd",
	"expndtw", "kerning", "charscalex", "cs", "crauth", "crdate", "revauth",
	"revdttm", "revauthdel", "revdttmdel",
	// styles
	"s", "ds", "ts", "sbasedon", "snext", "slink", "spriority",
	// paragraph
	"fi", "li", "ri", "lin", "rin", "sb", "sa", "sl", "slmult", "outlinelevel",
	"tx", "tb", "ls", "ilvl", "cbpat", "cfpat", "shading",
	// tables
	"cellx", "trleft", "trgaph", "trrh", "trwWidth", "trftsWidth", "trpaddl",
	"trpaddr", "trpaddt", "trpaddb", "trpaddfl", "trpaddfr", "trpaddft",
	"trpaddfb", "trwWidthB", "trwWidthA", "trftsWidthB", "trftsWidthA",
	"clwWidth", "clftsWidth", "clpadl", "clpadr", "clpadt", "clpadb",
	"clpadfl", "clpadfr", "clpadft", "clpadfb", "clcbpat", "clcfpat",
	"clshdng", "itap", "tblind", "tblindtype",
	// borders
	"brdrw", "brdrcf", "brsp",
	// sections and document
	"paperw", "paperh", "margl", "margr", "margt", "margb", "gutter",
	"pgwsxn", "pghsxn", "marglsxn", "margrsxn", "margtsxn", "margbsxn",
	"guttersxn", "headery", "footery", "cols", "colsx", "colno", "colw",
	"colsr", "pgnstarts", "pgnstart", "linemod", "linex", "linestarts",
	"deff", "deflang", "deflangfe", "ansicpg", "cpg", "fcharset", "fprq",
	"u", "bin", "ftnstart", "aftnstart", "hyphhotz",
	"viewkind", "viewzk", "sectunlocked", "stshfdbch", "stshfloch",
	"stshfhich", "stshfbi", "adeff",
	// frames
	"posx", "posy", "absw", "absh", "dxfrtext", "dfrmtxtx", "dfrmtxty",
	"dropcapli", "dropcapt", "posnegx", "posnegy",
	// pictures, shapes and objects
	"picw", "pich", "picwgoal", "pichgoal", "piccropl", "piccropr",
	"piccropt", "piccropb", "shpleft", "shptop", "shpright", "shpbottom",
	"shpz", "shpwr", "shpwrk", "shpfblwtxt", "shpfhdr", "dpx", "dpy",
	"dpxsize", "dpysize", "dplinecor", "dplinecog", "dplinecob",
	"dpfillbgcr", "dpfillbgcg", "dpfillbgcb", "dplinew", "objw", "objh",
	"objscalex", "objscaley", "blipupi", "picscalex", "picscaley",
	// color table
	"red", "green", "blue",
	// lists
	"levelnfc", "levelnfcn", "levelstartat", "leveljc", "leveljcn",
	"levelfollow", "levellegal", "levelnorestart", "levelold", "levelpicture",
	"levelindent", "levelspace", "levelprev", "levelprevspace", "listid",
	"listtemplateid", "listoverridecount", "listrestarthdn", "pnlvl",
	"pnstart", "pnf", "pnindent", "pnsp", "pnfs",
	// information
	"yr", "mo", "dy", "hr", "min", "sec", "version", "edmins", "nofpages",
	"nofwords", "nofchars", "nofcharsws", "id", "vern", "proptype",
	// form fields
	"fftype", "ffdefres", "ffres", "ffhps", "ffmaxlen", "ffprot",
	"ffownhelp", "ffownstat", "ffhaslistbox", "ffsize", "ffrecalc",
}

// valueDefaults lists value keywords whose parameter defaults to non-zero.
var valueDefaults = map[string]int{
	"uc":        1,
	"fs":        24,
	"up":        6,
	"dn":        6,
	"picscalex": 100,
	"picscaley": 100,
	"deftab":    720,
	"viewscale": 100,
}
