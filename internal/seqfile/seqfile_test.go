package seqfile

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const twoRecords = `>sp|P69905|HBA_HUMAN Hemoglobin subunit alpha
MVLSPADKTN
VKAAWGKVGA
; a comment
>second
KKKK
`

func TestReadFirstRecordOnly(t *testing.T) {
	rec, err := Read(strings.NewReader(twoRecords))
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != "sp|P69905|HBA_HUMAN" {
		t.Errorf("id = %q", rec.ID)
	}
	if rec.Seq != "MVLSPADKTNVKAAWGKVGA" {
		t.Errorf("seq = %q", rec.Seq)
	}
}

func TestReadPlainText(t *testing.T) {
	rec, err := Read(strings.NewReader("mkr st\r\nly\n"))
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != "" || rec.Seq != "mkr stly" {
		t.Fatalf("got %+v", rec)
	}
}

func TestReadFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	gw.Write([]byte(">p1\nMKR\n"))
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	fh.Close()

	rec, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != "p1" || rec.Seq != "MKR" {
		t.Fatalf("got %+v", rec)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error")
	}
}
