// Package archive writes tar streams out of an afero filesystem.
//
// Every entry is written with mode 0777 and directory entries carry a
// trailing slash. A Writer optionally routes the tar stream through a
// parallel gzip stage (klauspost/pgzip); the choice is made from the
// destination name with IsGzip.
package archive
