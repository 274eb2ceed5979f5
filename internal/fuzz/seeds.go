package fuzztests

import "testing"

const maxFuzzInput = 64 << 10 // keep single fuzz inputs bounded

// addCorpusSeeds feeds the harness with inputs covering every issue
// code plus the well-formed shapes the parser accepts.
func addCorpusSeeds(f *testing.F) {
	seeds := []string{
		"",
		";",
		";;;",
		"Jimmy Olsen;",
		"Jimmy Olsen (origin, death);",
		"Clark Kent [Kal-El];",
		"Justice League [Wonder Woman; Batman [Bruce Wayne]; Superman [Kal-El]];",
		"Hero (a) (b) [x] [y];",
		"Iota [B] (y) [A];",
		"Zeta (a,b; Eta (c);",
		"Omicron [never closed; Pi (fine);",
		"Mu ); Nu ];",
		"Theta ((x));",
		"(only info);",
		"[only alias];",
		"Team [[bad]; Good];",
		"0((0",
		"0[(00",
		"Team [A [x]; [open(];",
		"  spaced name  ( info )  [ alias ] ;",
		"A [B [C [D]]];",
	}
	for _, s := range seeds {
		f.Add(s)
	}
}

func clampSeed(s string) string {
	if len(s) > maxFuzzInput {
		return s[:maxFuzzInput]
	}
	return s
}
