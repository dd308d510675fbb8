package persistence

import (
	"github.com/hupe1980/ohmgo/catalog"
	"github.com/hupe1980/ohmgo/codec"
)

// EncodeRecords serializes a catalog into the raw record stream:
// one 11-byte record per distinct resistance, in ascending key order so
// that two builds of the same catalog produce byte-identical files.
func EncodeRecords(c *catalog.Catalog) ([]byte, error) {
	out := make([]byte, 0, c.Len()*codec.RecordSize)
	for _, nw := range c.Networks() {
		data, err := codec.Marshal(nw)
		if err != nil {
			return nil, err
		}
		out = append(out, data...)
	}
	return out, nil
}

// DecodeRecords parses a raw record stream. A record that fails to
// decode (bad topology tag, trailing partial record) is dropped and
// counted rather than aborting the whole catalog; only an unreadable
// blob is fatal, and that is the caller's concern.
func DecodeRecords(data []byte) (records []codec.Record, dropped int) {
	records = make([]codec.Record, 0, len(data)/codec.RecordSize)

	var i int
	for ; i+codec.RecordSize <= len(data); i += codec.RecordSize {
		rec, err := codec.Unmarshal(data[i : i+codec.RecordSize])
		if err != nil {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	if i < len(data) {
		// Trailing bytes shorter than a record.
		dropped++
	}
	return records, dropped
}
