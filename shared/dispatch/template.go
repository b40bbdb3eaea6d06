// Author: Toluwalase Mebaanne

package dispatch

// Placeholder is the literal token in a command template that is replaced
// by the URL at expansion time.
const Placeholder = "%U"

// Expand produces the argument vector for a process launch: every token
// exactly equal to Placeholder becomes url, every other token passes
// through unchanged.
//
// Substitution is exact-token-match only. A token like "open%U" is NOT
// touched - partial substitution would let a malformed template smuggle the
// URL into the middle of an argument, which is harder to reason about than
// simply passing the token through verbatim.
//
// An empty template expands to an empty vector. Callers must treat an empty
// vector as "nothing to execute" rather than attempting to spawn an empty
// process.
func Expand(tokens []string, url string) []string {
	argv := make([]string, len(tokens))
	for i, tok := range tokens {
		if tok == Placeholder {
			argv[i] = url
		} else {
			argv[i] = tok
		}
	}
	return argv
}
