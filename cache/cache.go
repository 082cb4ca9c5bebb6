// Package cache provides result caches for whole-file translations, keyed
// by lexishift.ResultCacheKey. Both backends satisfy
// lexishift.TranslationCache.
package cache
