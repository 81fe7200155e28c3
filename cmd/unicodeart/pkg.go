// This package implements the command line tool that uses the API.
// It provides an easy and reliable interface to quickly generate Unicode art
// in the terminal from an image on the filesystem or behind an http(s) URL
// (See github.com/nebbyJammin/unicodeart/unicodeart).
//
// By default, the tool is compatible with .png, .jpg, .jpeg, .gif, .webp,
// .bmp and .tiff file formats.
package main
