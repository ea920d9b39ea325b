// Package ingest builds item records from audio files by reading their
// embedded tags (ID3, MP4, FLAC, Ogg).
//
// Tag fields map to Dublin Core elements as follows:
//
//	title         Title, falling back to the file name without extension
//	album artist  Creator, falling back to the track artist
//	genre         Subject
//	year          Date
//	comment       Description
//	album         Source
//	(constant)    Type "Sound"
//
// The container type is kept as Item Type Metadata "Original Format". The
// file's base name becomes the record's single attached file.
package ingest
