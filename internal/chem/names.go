package chem

import "fmt"

// alkylPrefix holds the IUPAC multiplying prefixes for chain lengths 1..10.
var alkylPrefix = [11]string{"", "meth", "eth", "prop", "but", "pent", "hex", "hept", "oct", "non", "dec"}

// maxChain is the longest chain length in the default catalog.
const maxChain = 10

func alkaneName(n int) string { return alkylPrefix[n] + "ane" }

func chloroalkaneName(n int) string { return "chloro" + alkylPrefix[n] + "ane" }

func alcoholName(n int) string { return alkylPrefix[n] + "anol" }

// aldehydeName uses the common names for the first two members, which is how
// they appear in every curriculum text.
func aldehydeName(n int) string {
	switch n {
	case 1:
		return "formaldehyde"
	case 2:
		return "acetaldehyde"
	default:
		return alkylPrefix[n] + "anal"
	}
}

func acidName(n int) string {
	switch n {
	case 1:
		return "formic acid"
	case 2:
		return "acetic acid"
	default:
		return alkylPrefix[n] + "anoic acid"
	}
}

func alkeneName(n int) string { return alkylPrefix[n] + "ene" }

// esterName names the condensation product of acid Ca with alcohol Cb,
// e.g. esterName(2, 2) == "ethyl acetate".
func esterName(a, b int) string {
	var acyl string
	switch a {
	case 1:
		acyl = "formate"
	case 2:
		acyl = "acetate"
	default:
		acyl = alkylPrefix[a] + "anoate"
	}
	return fmt.Sprintf("%syl %s", alkylPrefix[b], acyl)
}
