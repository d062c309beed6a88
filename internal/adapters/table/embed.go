package table

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/alloyforge/heapredict/pkg/alloy"
)

//go:embed element_data.csv
var defaultData []byte

var defaultTable = sync.OnceValues(func() (alloy.Table, error) {
	return ParseCSV(bytes.NewReader(defaultData))
})

// Default returns the table bundled with the binary, covering the elements
// most common in HEA screening. The parse can only fail if the embedded
// file is edited into an invalid state, so failures surface at first use.
func Default() (alloy.Table, error) {
	return defaultTable()
}
