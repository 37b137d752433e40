package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Ingest   bool
	Encode   bool
	Validate bool
}

var d *debug

func init() {
	d = &debug{}
	d.Ingest = boolEnv("KYAML_DEBUG_INGEST")
	d.Encode = boolEnv("KYAML_DEBUG_ENCODE")
	d.Validate = boolEnv("KYAML_DEBUG_VALIDATE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Ingest() bool {
	return d.Ingest
}
func Encode() bool {
	return d.Encode
}
func Validate() bool {
	return d.Validate
}
