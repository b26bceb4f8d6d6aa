package writers

import (
	"io"
	"path/filepath"

	"lgsim/internal/output"
	"lgsim/internal/sweep"
)

func init() {
	RegisterSweep(output.FormatText, writeListings)
	RegisterSweep(output.FormatTSV, writeTable)
	RegisterSweep(output.FormatJSON, writeJSON)
}

// ListingNames returns the four listing file names for a mode suffix, in
// order: L_L means, L_L SEMs, L_G means, L_G SEMs.
func ListingNames(suffix string) [4]string {
	return [4]string{
		"L_L_means" + suffix + ".txt",
		"L_L_sems" + suffix + ".txt",
		"L_G_means" + suffix + ".txt",
		"L_G_sems" + suffix + ".txt",
	}
}

func writeListings(dir string, res sweep.Result, opt Options) ([]string, error) {
	names := ListingNames(res.Suffix())
	series := [4][]float64{res.LRunMeans(), res.LRunSEMs(), res.GRunMeans(), res.GRunSEMs()}
	paths := make([]string, len(names))
	renders := make([]func(io.Writer) error, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		vals := series[i]
		renders[i] = func(w io.Writer) error { return output.WriteListing(w, vals, opt.Precision) }
	}
	if err := writeFilesAtomic(paths, renders); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeTable(dir string, res sweep.Result, opt Options) ([]string, error) {
	p := filepath.Join(dir, "sweep"+res.Suffix()+".tsv")
	err := writeFileAtomic(p, func(w io.Writer) error {
		return output.WriteTSV(w, res, opt.Header, opt.Precision)
	})
	if err != nil {
		return nil, err
	}
	return []string{p}, nil
}

func writeJSON(dir string, res sweep.Result, _ Options) ([]string, error) {
	p := filepath.Join(dir, "sweep"+res.Suffix()+".json")
	if err := writeFileAtomic(p, func(w io.Writer) error { return output.WriteJSON(w, res) }); err != nil {
		return nil, err
	}
	return []string{p}, nil
}
