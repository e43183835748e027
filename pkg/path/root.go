package path

// GetRoot returns the length of the root prefix of p. Root parsing
// never fails: a path without a root simply has a root of length zero.
//
// Under the Unix style the root is a single leading slash. Under the
// Windows style the root may additionally be a drive letter ("C:" or
// "C:\"), a UNC prefix up to and including the separator behind the
// share name ("\\server\share\"), or a device prefix ("\\.\", "\\?\").
func (s Style) GetRoot(p string) int {
	s.check()
	if s.windowsRoots {
		return s.windowsRoot(p)
	}
	if p != "" && s.isSeparator(p[0]) {
		return 1
	}
	return 0
}

// IsAbsolute reports whether p is absolute. A path is absolute exactly
// when it has a root whose last character is a separator. This single
// rule covers every root variant: "C:" and "\\server\share" are
// relative, "C:\", "\\server\share\" and "/" are absolute.
func (s Style) IsAbsolute(p string) bool {
	s.check()
	return s.isRootAbsolute(p, s.GetRoot(p))
}

// IsRelative reports whether p is relative, the complement of
// IsAbsolute.
func (s Style) IsRelative(p string) bool {
	return !s.IsAbsolute(p)
}

func (s Style) isRootAbsolute(p string, rootLength int) bool {
	return rootLength > 0 && s.isSeparator(p[rootLength-1])
}

func (s Style) windowsRoot(p string) int {
	if p == "" {
		return 0
	}

	if s.isSeparator(p[0]) {
		// A single leading separator is a root on its own.
		if len(p) < 2 || !s.isSeparator(p[1]) {
			return 1
		}

		// Two leading separators introduce a network or device
		// path. A device prefix is exactly "\\." or "\\?"
		// followed by a separator, and always has length 4.
		// UNC-over-device ("\\?\UNC\...") extends beyond that,
		// but the root of such a path is still the device
		// prefix.
		if len(p) >= 4 && (p[2] == '?' || p[2] == '.') && s.isSeparator(p[3]) {
			return 4
		}

		// Otherwise this is a UNC path. The root spans the
		// server name, the share name, and the separator behind
		// the share name if there is one.
		i := s.nextStop(p, 2)
		for i < len(p) && s.isSeparator(p[i]) {
			i++
		}
		i = s.nextStop(p, i)
		if i < len(p) && s.isSeparator(p[i]) {
			i++
		}
		return i
	}

	// A character followed by a colon is a drive root. The drive
	// root extends over a directly following separator, which marks
	// the path as absolute rather than drive-relative.
	if len(p) >= 2 && p[1] == ':' {
		if len(p) >= 3 && s.isSeparator(p[2]) {
			return 3
		}
		return 2
	}
	return 0
}
