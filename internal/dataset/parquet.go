package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// LoadParquet reads a Parquet file through Arrow into a dataset.
func LoadParquet(ctx context.Context, path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer f.Close()

	mem := memory.NewGoAllocator()
	pf, err := file.NewParquetReader(f, file.WithReadProps(parquet.NewReaderProperties(mem)))
	if err != nil {
		return nil, fmt.Errorf("create parquet reader: %w", err)
	}
	defer pf.Close()

	arrowReader, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, fmt.Errorf("create arrow reader: %w", err)
	}

	tbl, err := arrowReader.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("read parquet data: %w", err)
	}
	defer tbl.Release()

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return FromArrowTable(tbl, title)
}

// FromArrowTable converts an Arrow table into a dataset.
// Numeric columns become numbers, booleans stay booleans, strings stay
// strings; every other type is kept as its Arrow text form.
func FromArrowTable(tbl arrow.Table, title string) (*Dataset, error) {
	schema := tbl.Schema()
	numCols := int(tbl.NumCols())
	numRows := int(tbl.NumRows())

	labels := make([]string, numCols)
	for i := 0; i < numCols; i++ {
		labels[i] = schema.Field(i).Name
	}

	rows := make([]Row, numRows)
	for i := range rows {
		rows[i] = make(Row, numCols)
	}

	for c := 0; c < numCols; c++ {
		label := labels[c]
		r := 0
		for _, chunk := range tbl.Column(c).Data().Chunks() {
			for j := 0; j < chunk.Len() && r < numRows; j++ {
				rows[r][label] = arrowValue(chunk, j)
				r++
			}
		}
	}

	return New(title, labels, rows)
}

func arrowValue(arr arrow.Array, i int) Value {
	if arr.IsNull(i) {
		return Null()
	}

	switch a := arr.(type) {
	case *array.String:
		return String(a.Value(i))
	case *array.LargeString:
		return String(a.Value(i))
	case *array.Boolean:
		return Bool(a.Value(i))
	case *array.Int8:
		return Number(float64(a.Value(i)))
	case *array.Int16:
		return Number(float64(a.Value(i)))
	case *array.Int32:
		return Number(float64(a.Value(i)))
	case *array.Int64:
		return Number(float64(a.Value(i)))
	case *array.Uint8:
		return Number(float64(a.Value(i)))
	case *array.Uint16:
		return Number(float64(a.Value(i)))
	case *array.Uint32:
		return Number(float64(a.Value(i)))
	case *array.Uint64:
		return Number(float64(a.Value(i)))
	case *array.Float32:
		return Number(float64(a.Value(i)))
	case *array.Float64:
		return Number(a.Value(i))
	case *array.Decimal128, *array.Decimal256:
		if f, err := strconv.ParseFloat(arr.ValueStr(i), 64); err == nil {
			return Number(f)
		}
		return String(arr.ValueStr(i))
	default:
		return String(arr.ValueStr(i))
	}
}
