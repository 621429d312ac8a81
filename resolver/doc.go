// Package resolver provides a registry-backed implementation of
// router.Resolver, mapping "Controller::method" handler references to
// methods on explicitly registered controller values.
//
// Controllers are plain Go values; any exported method with the handler
// signature is reachable:
//
//	type Users struct{ store *Store }
//
//	func (u *Users) Show(ctx context.Context, params []router.Param) error {
//	    ...
//	}
//
//	reg := resolver.NewRegistry()
//	reg.Register("Users", &Users{store: store})
//
//	r := router.NewRouter()
//	r.SetResolver(reg)
//	r.Get("/users/{id}", router.Named("Users::Show"))
//
// A default namespace can be set so declarative route tables may use
// bare controller names:
//
//	reg.SetNamespace("admin")
//	// "Users::Index" now resolves against the controller
//	// registered as "admin.Users".
//
// Resolution failures (unknown controller, unknown method, wrong
// signature) are reported as errors; the router maps them to its
// fallback protocol rather than failing the request cycle.
package resolver
