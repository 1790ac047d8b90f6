package fts_exec

const (
	// MaxPosition the upper bound of a token position within one document;
	// DocWordsSpace can not be constructed beyond it, and the executor never
	// materializes positions above it.
	MaxPosition uint32 = 1 << 14

	// MaxPhraseSize theoretical maximum phrase length, it sizes the guard
	// region of DocWordsSpace so that phrase probes starting near maxPos can
	// read ahead without bound checks.
	MaxPhraseSize uint32 = 64
)
