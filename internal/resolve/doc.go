// Package resolve turns item identifiers and stored file names into public
// URLs.
//
// URLs builds the display URL of an item from a site base URL:
//
//	https://example.org/items/show/42
//
// Derivatives builds derivative image URLs below a files base URL. Every
// derivative except the original is a JPEG named after the stored file:
//
//	original          <files>/original/<filename>
//	fullsize          <files>/fullsize/<stem>.jpg
//	thumbnail         <files>/thumbnails/<stem>.jpg
//	square_thumbnail  <files>/square_thumbnails/<stem>.jpg
package resolve
