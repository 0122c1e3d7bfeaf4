// Package filters provides the byte-level decoders used by the RTF importer.
//
// HexDecode:
//
//	decoded, err := filters.HexDecode(data)
//
// Decodes the hexadecimal text of \pict, \objdata and \datafield groups.
// Whitespace is ignored and a trailing odd digit is dropped.
//
// DecompressRTF:
//
//	rtf, err := filters.DecompressRTF(data)
//
// Expands compressed RTF (the LZFu format of MS-OXRTFCP, used for message
// bodies in Outlook items) back into plain RTF.
package filters
