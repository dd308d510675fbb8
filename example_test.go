package ohmgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/ohmgo"
	"github.com/hupe1980/ohmgo/catalog"
	"github.com/hupe1980/ohmgo/network"
)

func Example() {
	ctx := context.Background()

	og, err := ohmgo.New(ctx, ohmgo.WithSpecs(catalog.Spec{Series: "e6", Decades: 3}))
	if err != nil {
		log.Fatal(err)
	}

	nw, err := og.NearestNetwork(ctx, 4.7, "e6o3")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(nw.Topology, network.FormatOhms(nw.Resistance))
	// Output: 1s 4.70Ω
}
