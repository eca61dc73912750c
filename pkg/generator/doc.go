// Package generator turns parsed style modules into generated C++
// source pairs and binary/text artifacts: deduplicated scaled pixel
// constants, font family and icon mask tables, the palette class with
// its checksum and name matcher, composed icon atlases, and the sample
// theme file.
package generator
