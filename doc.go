// Package ohmgo provides an embedded resistor-network catalog and
// nearest-value query engine.
//
// Given a target resistance and a preferred-value series (E6, E12 or
// E24 per IEC 60063), ohmgo answers with the combination of one to
// three standard resistors whose combined resistance is closest to the
// target. Catalogs enumerate every series/parallel arrangement of up to
// three resistors, deduplicated so that the simplest network wins for
// each distinct resistance.
//
// # Quick Start
//
// Build the catalogs in-process and query:
//
//	ctx := context.Background()
//	og, err := ohmgo.New(ctx)
//	if err != nil {
//	    panic(err)
//	}
//
//	nw, err := og.NearestNetwork(ctx, 5300, "e24o6")
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(nw.Topology, network.FormatOhms(nw.Resistance))
//
// # Offline build and load
//
// Catalogs can be built once, persisted to a blob store and loaded
// read-only by any number of query processes:
//
//	bs, _ := blobstore.NewLocalStore("./data")
//	og, _ := ohmgo.New(ctx)
//	_ = og.Save(ctx, bs)
//
//	// later, elsewhere
//	og, _ := ohmgo.Load(ctx, bs)
//
// Remote stores (S3, MinIO) plug in through the same blobstore
// interface, and a shared DynamoDB table can serve exact lookups via
// store.DynamoStore.
package ohmgo
