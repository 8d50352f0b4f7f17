// Command quadindex-tool builds a quadindex.Tree over either randomly
// generated points or points loaded from a CSV file, and runs one query
// family against it, printing either the query results or the tree's
// serialized shape.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/kestrel-geo/quadindex/pkg/geom"
	"github.com/kestrel-geo/quadindex/pkg/quadindex"
)

var (
	csvPathFlag  = flag.String("csv", "", "path to a CSV file of x,y,value rows to load instead of generating random points")
	seedFlag     = flag.Int64("seed", 1, "seed for the random point generator")
	countFlag    = flag.Int("n", 1000, "number of random points to insert")
	capacityFlag = flag.Int("capacity", 8, "leaf capacity before a node subdivides")
	worldFlag    = flag.Float64("world", 1000, "side length of the square world boundary")
	modeFlag     = flag.String("mode", "stats", "what to run: stats, query, nearest, hotspot, serialize")
	queryXFlag   = flag.Float64("query-x", 0, "x of the query rect origin for -mode=query, or of the target for -mode=nearest")
	queryYFlag   = flag.Float64("query-y", 0, "y of the query rect origin for -mode=query, or of the target for -mode=nearest")
	queryRFlag   = flag.Float64("query-r", 50, "side length of the square query rect for -mode=query")
	kFlag        = flag.Int("k", 5, "k for -mode=nearest")
)

func main() {
	flag.Parse()

	world := geom.Rect{X: 0, Y: 0, W: float32(*worldFlag), H: float32(*worldFlag)}
	tree := quadindex.New[int](world)

	if *csvPathFlag != "" {
		if err := loadCSV(tree, *csvPathFlag, *capacityFlag); err != nil {
			fmt.Printf("loading %s failed: %s\n", *csvPathFlag, err)
			return
		}
	} else {
		rng := rand.New(rand.NewSource(*seedFlag))
		for i := 0; i < *countFlag; i++ {
			p := geom.Point{
				X: float32(rng.Float64() * *worldFlag),
				Y: float32(rng.Float64() * *worldFlag),
			}
			if err := tree.Insert(p, i, *capacityFlag); err != nil {
				fmt.Printf("insert %v failed: %s\n", p, err)
			}
		}
	}

	switch *modeFlag {
	case "stats":
		runStats(tree)
	case "query":
		runQuery(tree)
	case "nearest":
		runNearest(tree)
	case "hotspot":
		runHotspot(tree)
	case "serialize":
		runSerialize(tree)
	default:
		fmt.Printf("unknown -mode %q\n", *modeFlag)
	}
}

func runStats(tree *quadindex.Tree[int]) {
	leaves, internals := tree.CountNodes()
	fmt.Printf("count=%d depth=%d leaves=%d internals=%d\n", tree.Count(), tree.Depth(), leaves, internals)
}

func runQuery(tree *quadindex.Tree[int]) {
	r := geom.Rect{X: float32(*queryXFlag), Y: float32(*queryYFlag), W: float32(*queryRFlag), H: float32(*queryRFlag)}
	hits := tree.Query(r)
	fmt.Printf("query %v matched %d points\n", r, len(hits))
}

func runNearest(tree *quadindex.Tree[int]) {
	target := geom.Point{X: float32(*queryXFlag), Y: float32(*queryYFlag)}
	hits := tree.FindNearest(target, *kFlag)
	for _, e := range hits {
		fmt.Printf("%v -> %d\n", e.Point, e.Value)
	}
}

func runHotspot(tree *quadindex.Tree[int]) {
	rect, count := tree.FindHotspot(*capacityFlag)
	fmt.Printf("hotspot %v count=%d\n", rect, count)
}

func runSerialize(tree *quadindex.Tree[int]) {
	out := quadindex.Serialize(tree, strconv.Itoa)
	fmt.Println(out)
}

// loadCSV reads x,y,value rows from path and inserts each into tree. The
// first line is treated as a header and discarded, matching lds_csv's
// convention. A malformed row is reported and skipped rather than aborting
// the whole load.
func loadCSV(tree *quadindex.Tree[int], path string, capacity int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}

	lineNum := 1
	for {
		lineNum++
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("%d: %s\n", lineNum, err)
			continue
		}
		if len(row) < 2 {
			fmt.Printf("%d: expected at least 2 columns, got %d\n", lineNum, len(row))
			continue
		}

		x, err := strconv.ParseFloat(row[0], 32)
		if err != nil {
			fmt.Printf("%d: bad x %q: %s\n", lineNum, row[0], err)
			continue
		}
		y, err := strconv.ParseFloat(row[1], 32)
		if err != nil {
			fmt.Printf("%d: bad y %q: %s\n", lineNum, row[1], err)
			continue
		}
		value := lineNum
		if len(row) >= 3 {
			value, err = strconv.Atoi(row[2])
			if err != nil {
				fmt.Printf("%d: bad value %q: %s\n", lineNum, row[2], err)
				continue
			}
		}

		p := geom.Point{X: float32(x), Y: float32(y)}
		if err := tree.Insert(p, value, capacity); err != nil {
			fmt.Printf("%d: insert %v failed: %s\n", lineNum, p, err)
		}
	}
	return nil
}
