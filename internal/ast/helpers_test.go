package ast

import "langfront/internal/source"

func spanAt(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func makePath(segments ...source.StringID) Path {
	return Path{Segments: segments}
}
