package path

// GetAbsolute resolves p against the absolute directory base and
// writes the normalized result into buffer. If p is already absolute,
// base is ignored and p alone is normalized. If base itself is
// relative, a synthetic root is put in front of it so that the result
// is absolute anyway; that is a fallback for misuse, not part of the
// contract.
func (s Style) GetAbsolute(base, p string, buffer []byte) int {
	s.check()

	paths := make([]string, 0, 3)
	if !s.IsAbsolute(base) {
		paths = append(paths, s.separators[:1])
	}
	if s.IsAbsolute(p) {
		paths = append(paths, p)
	} else {
		paths = append(paths, base, p)
	}
	return s.joinAndNormalize(paths, buffer)
}

// GetAbsoluteString, like GetAbsolute, but allocating the exactly
// sized result.
func (s Style) GetAbsoluteString(base, p string) string {
	return buildString(func(buffer []byte) int {
		return s.GetAbsolute(base, p, buffer)
	})
}
