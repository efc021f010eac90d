package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Restructure bool
	Merge       bool
	Document    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Restructure = boolEnv("YX_DEBUG_RESTRUCTURE")
	d.Merge = boolEnv("YX_DEBUG_MERGE")
	d.Document = boolEnv("YX_DEBUG_DOCUMENT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Restructure() bool {
	return d.Restructure
}
func Merge() bool {
	return d.Merge
}
func Document() bool {
	return d.Document
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
