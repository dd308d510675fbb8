// Package persistence reads and writes catalog files.
//
// Three artifacts exist per catalog, named by its identifier:
//
//   - <id>.bin: the raw concatenation of fixed 11-byte records, no
//     header, EOF-terminated. Optionally block-compressed with zstd or
//     lz4, in which case the name gains a .zst or .lz4 suffix.
//   - <id>.keys: the distinct resistance keys, ascending, as a packed
//     little-endian float64 array with a magic/version/count header and
//     a CRC32 footer.
//   - <id>.txt: the same keys as a comma-delimited text list, for
//     consumers that cannot read the packed form.
//
// All writes go through the blobstore's atomic Put, so a reader sees
// either the previous catalog or the new one, never a mix.
package persistence
