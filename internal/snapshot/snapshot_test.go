package snapshot

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/onsi/gomega"

	"github.com/san-kum/lagsim/internal/particles"
)

// linGroup builds a group with x = 10 points on [0, 1] and y = 2x, the
// classic round-trip fixture.
func linGroup(t *testing.T, name string) *particles.Group {
	t.Helper()
	n := 10
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i) / float64(n-1)
		y[i] = 2 * x[i]
	}
	g := particles.NewGroup(name, n)
	if err := g.AddPropertyWith("x", x); err != nil {
		t.Fatal(err)
	}
	if err := g.AddPropertyWith("y", y); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestDumpAndLoadByDefault(t *testing.T) {
	g := gomega.NewWithT(t)
	pa := linGroup(t, "fluid")
	fname := filepath.Join(t.TempDir(), "simple.gz")

	g.Expect(Dump(fname, []*particles.Group{pa}, map[string]float64{"dt": 1.0})).To(gomega.Succeed())

	snap, err := Load(fname)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(snap.SolverData).To(gomega.HaveKeyWithValue("dt", 1.0))
	g.Expect(snap.SolverData).To(gomega.HaveLen(1))

	pa1, ok := snap.Group("fluid")
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(pa1.PropertyNames()).To(gomega.Equal(pa.PropertyNames()))

	for _, name := range []string{"x", "y"} {
		want := pa.MustProperty(name)
		got := pa1.MustProperty(name)
		for i := range want {
			g.Expect(got[i]).To(gomega.BeNumerically("~", want[i], 1e-14))
		}
	}
}

func TestDumpAndLoadWithPartialSelection(t *testing.T) {
	g := gomega.NewWithT(t)
	pa := particles.NewWCSPHGroup("fluid", 10)
	x := pa.MustProperty("x")
	y := pa.MustProperty("y")
	for i := range x {
		x[i] = float64(i) / 9.0
		y[i] = 2 * x[i]
	}
	pa.SetOutputArrays([]string{"x", "y"})

	fname := filepath.Join(t.TempDir(), "partial.gz")
	g.Expect(Dump(fname, []*particles.Group{pa}, nil)).To(gomega.Succeed())

	snap, err := Load(fname)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	pa1 := snap.Groups["fluid"]

	// only the selected subset survives a partial dump
	g.Expect(pa1.PropertyNames()).To(gomega.Equal([]string{"x", "y"}))

	got := pa1.MustProperty("x")
	for i := range x {
		g.Expect(got[i]).To(gomega.BeNumerically("~", x[i], 1e-14))
	}
}

func TestDumpAndLoadWithConstants(t *testing.T) {
	g := gomega.NewWithT(t)
	pa := linGroup(t, "fluid")
	pa.SetConstant("c1", 1.0)
	pa.SetConstant("c2", 2.0, 3.0)
	pa.SetOutputArrays([]string{"x", "y"})

	fname := filepath.Join(t.TempDir(), "consts.gz")
	g.Expect(Dump(fname, []*particles.Group{pa}, nil)).To(gomega.Succeed())

	snap, err := Load(fname)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	pa1 := snap.Groups["fluid"]

	g.Expect(pa1.ConstantNames()).To(gomega.Equal(pa.ConstantNames()))

	c1, err := pa1.Constant("c1")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(c1).To(gomega.Equal([]float64{1.0}))

	c2, err := pa1.Constant("c2")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(c2).To(gomega.Equal([]float64{2.0, 3.0}))
}

func TestLoadWorksWithDumpVersion1(t *testing.T) {
	g := gomega.NewWithT(t)
	pa := linGroup(t, "fluid")
	pa.SetConstant("c1", 1.0)

	fname := filepath.Join(t.TempDir(), "legacy.gz")
	g.Expect(DumpV1(fname, []*particles.Group{pa}, nil)).To(gomega.Succeed())

	snap, err := Load(fname)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(snap.Version).To(gomega.Equal(VersionLegacy))

	pa1 := snap.Groups["fluid"]
	// legacy dumps carry every property and no constants section
	g.Expect(pa1.PropertyNames()).To(gomega.Equal(pa.PropertyNames()))
	g.Expect(pa1.ConstantNames()).To(gomega.BeEmpty())

	want := pa.MustProperty("y")
	got := pa1.MustProperty("y")
	for i := range want {
		g.Expect(got[i]).To(gomega.BeNumerically("~", want[i], 1e-14))
	}
}

func TestOutputArrayInformationIsSaved(t *testing.T) {
	g := gomega.NewWithT(t)
	pa := linGroup(t, "fluid")
	if err := pa.AddProperty("u"); err != nil {
		t.Fatal(err)
	}

	selection := []string{"x", "y", "u"}
	pa.SetOutputArrays(selection)

	fname := filepath.Join(t.TempDir(), "outsel.gz")
	g.Expect(Dump(fname, []*particles.Group{pa}, nil)).To(gomega.Succeed())

	snap, err := Load(fname)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	g.Expect(pa.OutputArrays()).To(gomega.Equal(selection))
	g.Expect(snap.Groups["fluid"].OutputArrays()).To(gomega.Equal(selection))
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	g := gomega.NewWithT(t)
	fname := filepath.Join(t.TempDir(), "future.gz")

	file, err := os.Create(fname)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	zw := gzip.NewWriter(file)
	g.Expect(json.NewEncoder(zw).Encode(fileRecord{Version: 99})).To(gomega.Succeed())
	g.Expect(zw.Close()).To(gomega.Succeed())
	g.Expect(file.Close()).To(gomega.Succeed())

	_, err = Load(fname)
	g.Expect(errors.Is(err, ErrUnknownVersion)).To(gomega.BeTrue())
	g.Expect(err.Error()).To(gomega.ContainSubstring("99"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.gz"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
