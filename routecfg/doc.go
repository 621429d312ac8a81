// Package routecfg loads declarative YAML route tables into a router.
//
// All handlers in a route table are named "Controller::method"
// references, so a resolver must be injected into the router before
// dispatching:
//
//	before:
//	  - methods: "*"
//	    pattern: /admin(/.*)?
//	    handler: Session::Require
//
//	routes:
//	  - pattern: /users/{id}
//	    handler: Users::Show
//	  - methods: POST
//	    pattern: /users
//	    handler: Users::Create
//
//	mounts:
//	  - prefix: /api
//	    mounts:
//	      - prefix: /v1
//	        routes:
//	          - pattern: /health
//	            handler: Health::Check
//
//	not_found:
//	  - pattern: /admin/{page}
//	    handler: Errors::AdminMissing
//	  - handler: Errors::Missing
//
// Load parses and validates the document; Apply registers the entries
// in declaration order, so evaluation order on dispatch follows the
// document from top to bottom.
package routecfg
