package report

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/natalierpayne/join-replicate-fqs/pkg/replicate"
)

func testResults() []replicate.Result {
	return []replicate.Result{
		{
			Pair: replicate.Pair{
				Original:  "inputs/ind_1.1.fq",
				Replicate: "inputs/ind_1_WR.1.fq",
				Pattern:   "_WR",
				Name:      replicate.Name{Root: "ind_1", Direction: ".1", Format: ".fq"},
			},
			OriginalReads:  2,
			ReplicateReads: 3,
			Concatenated:   "outdir/ind_1.1.fq",
			Extracted:      []string{"exdir/ind_1.1.fq", "exdir/ind_1_WR.1.fq"},
		},
		{
			Pair: replicate.Pair{
				Original:  "inputs/ind_1.2.fq",
				Replicate: "inputs/ind_1_WR.2.fq",
				Pattern:   "_WR",
				Name:      replicate.Name{Root: "ind_1", Direction: ".2", Format: ".fq"},
			},
			OriginalReads:  2,
			ReplicateReads: 2,
		},
	}
}

func TestWriteXlsx(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "summary.xlsx")
	if err := WriteXlsx(path, testResults()); err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}

	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(SummarySheet)
	if err != nil {
		t.Fatalf("Failed to read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, but got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], SummaryTitle) {
		t.Errorf("Expected title %v, but got %v", SummaryTitle, rows[0])
	}
	var expected = []string{
		"inputs/ind_1.1.fq", "inputs/ind_1_WR.1.fq", "_WR", ".1", "2", "3",
		"outdir/ind_1.1.fq", "exdir/ind_1.1.fq,exdir/ind_1_WR.1.fq",
	}
	if !reflect.DeepEqual(rows[1], expected) {
		t.Errorf("Expected %v, but got %v", expected, rows[1])
	}
}

func TestReadCounts(t *testing.T) {
	labels, original, rep := ReadCounts(testResults())
	if !reflect.DeepEqual(labels, []string{"ind_1_WR.1.fq", "ind_1_WR.2.fq"}) {
		t.Errorf("Unexpected labels %v", labels)
	}
	if !reflect.DeepEqual(original, []int{2, 2}) || !reflect.DeepEqual(rep, []int{3, 2}) {
		t.Errorf("Unexpected counts %v %v", original, rep)
	}
}

func TestWriteChart(t *testing.T) {
	var dir = t.TempDir()

	t.Run("html", func(t *testing.T) {
		var path = filepath.Join(dir, "reads.html")
		if err := WriteChart(path, testResults()); err != nil {
			t.Fatalf("Expected no error, but got: %v", err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(content), "ind_1_WR.1.fq") {
			t.Error("Expected chart to mention replicate label")
		}
	})

	t.Run("png", func(t *testing.T) {
		var path = filepath.Join(dir, "reads.png")
		if err := WriteChart(path, testResults()); err != nil {
			t.Fatalf("Expected no error, but got: %v", err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(content, []byte("\x89PNG")) {
			t.Error("Expected PNG output")
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if err := WriteChart(filepath.Join(dir, "reads.txt"), testResults()); err == nil {
			t.Error("Expected an error, but got nil")
		}
	})
}
