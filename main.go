// Golden-vector generator for the NXT telegram encoder. Writes one
// named byte-array literal per line on stdout, for use as conformance
// fixtures in other implementations' test suites. Output is
// deterministic so suites can compare byte for byte.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/tormodg/gonxt/vectors"
)

func main() {
	manifestPath := flag.String("manifest", "", "YAML manifest describing vectors to generate (default: builtin set)")
	flag.Parse()

	var (
		vs  []vectors.Vector
		err error
	)
	if *manifestPath != "" {
		var m *vectors.Manifest
		m, err = vectors.Load(*manifestPath)
		if err != nil {
			log.Fatalf("loading manifest %s: %v", *manifestPath, err)
		}
		vs, err = m.Build()
	} else {
		vs, err = vectors.Builtin()
	}
	if err != nil {
		log.Fatalf("building vectors: %v", err)
	}

	if err := vectors.Write(os.Stdout, vs); err != nil {
		log.Fatalf("writing vectors: %v", err)
	}
}
