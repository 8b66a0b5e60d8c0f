package nw

// Distance dispatches to the engine selected by opts.Engine, passing the
// matching tuning parameter. Use the Distance* entry points directly
// when the engine choice is static.
func Distance(a, b []byte, opts Options) (int64, error) {
	switch opts.Engine {
	case RecMemo:
		return DistanceRecMemo(a, b, opts.Reporter)
	case Iterative:
		return DistanceIterative(a, b, opts.Reporter)
	case CacheAware:
		return DistanceCacheAware(a, b, opts.CacheSize, opts.Reporter)
	case CacheOblivious:
		return DistanceCacheOblivious(a, b, opts.Threshold, opts.Reporter)
	default:
		return 0, ErrUnknownEngine
	}
}
