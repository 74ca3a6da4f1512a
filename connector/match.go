package connector

// EasyMatch reports whether the connector strings s and t match according
// to the connector matching rules. Both strings must be properly formed:
// zero or one leading lowercase letters, one or more uppercase letters,
// then trailing lowercase letters or '*' wildcards.
//
// The rule is symmetric in s and t. Connectors starting with lowercase
// markers match ONLY if the markers differ: an initial 'h' (head) matches
// an initial 'd' (dependent) while 'h'/'h' and 'd'/'d' are rejected.
// Otherwise the uppercase parts must be identical, and the trailing parts
// must agree position by position, a wildcard on either side matching
// anything. When the trailing runs have different lengths, comparison stops
// at the shorter run and the remainder is accepted unchecked; that
// truncation is part of the matching contract and is relied upon by
// existing grammars.
//
// This is the reference form; the descriptor fast path must agree with it
// on every pair of well-formed strings.
func EasyMatch(s, t string) bool {
	var ms, mt byte
	if len(s) > 0 && isLower(s[0]) {
		ms = s[0]
		s = s[1:]
	}
	if len(t) > 0 && isLower(t[0]) {
		mt = t[0]
		t = t[1:]
	}
	if ms != 0 && mt != 0 && ms == mt {
		return false
	}

	// Uppercase runs in lockstep; no wildcards, no length slack.
	i, j := 0, 0
	for (i < len(s) && isUpper(s[i])) || (j < len(t) && isUpper(t[j])) {
		var cs, ct byte
		if i < len(s) {
			cs = s[i]
		}
		if j < len(t) {
			ct = t[j]
		}
		if cs != ct {
			return false
		}
		i++
		j++
	}

	// Trailing runs in lockstep while both sides last.
	for i < len(s) && j < len(t) {
		if s[i] != '*' && t[j] != '*' && s[i] != t[j] {
			return false
		}
		i++
		j++
	}
	return true
}

// Match is the descriptor-level equivalent of EasyMatch, usable in the
// innermost loop of the parse search. It is valid only after the owning
// table has been finalized, when GroupID is an exact proxy for uppercase
// equality.
func (d *Descriptor) Match(other *Descriptor) bool {
	if d.ucID != other.ucID {
		return false
	}
	return d.lcMatch(other)
}

// lcMatch compares the trailing and head/dependent parts, assuming the
// uppercase parts are already known to be equal. A trailing position
// counts only when both sides carry a concrete letter there, which
// reproduces both the wildcard rule and the tail-length truncation of
// EasyMatch.
func (d *Descriptor) lcMatch(other *Descriptor) bool {
	if (d.lcLetters^other.lcLetters)&d.lcMask&other.lcMask != 0 {
		return false
	}
	if d.headDependent != 0 && d.headDependent == other.headDependent {
		return false
	}
	return true
}
