// Package golingo resolves text translations through a persistent local
// cache and a prioritized chain of remote translation backends.
//
// A Resolver first consults its cache (including number-templated pattern
// matching), then tries each enabled provider in order until one returns a
// translation, writing the result back to the cache. If every provider
// fails, the original text is returned unchanged; Resolve never fails.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/LocaleKit/golingo"
//	    "github.com/LocaleKit/golingo/cache"
//	    "github.com/LocaleKit/golingo/provider"
//	)
//
//	func main() {
//	    store := cache.NewStore(cache.NewFileBackend("translations.json"))
//	    store.Load()
//
//	    reg := golingo.NewRegistry()
//	    reg.Register(provider.NewGoogleProvider(provider.GoogleConfig{}), true)
//	    reg.Register(provider.NewMyMemoryProvider(provider.MyMemoryConfig{}), true)
//
//	    r := golingo.NewResolver(reg, golingo.WithCache(store))
//	    fmt.Println(r.Resolve(context.Background(), "hello world", "auto", "es"))
//	}
package golingo
