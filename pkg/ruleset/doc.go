// Package ruleset builds named validator chains from a declarative document.
//
// A document maps rule names to an ordered list of steps. A step is either a
// bare rule kind or a single-key map carrying its arguments, optionally with
// a custom failure message:
//
//	rules:
//	  username:
//	    - required
//	    - length: [3, 20]
//	    - regexp: '^\w+$'
//	      message: may only contain letters, digits and underscores
//	  role:
//	    - any: [admin, member]
//	  nickname:
//	    - unique: redis
//	  email:
//	    - required
//	    - email
//	    - unique: {store: postgres, target: users.email}
//
// Supported kinds: base, required, email, uuid, every, min_length,
// max_length, length, min, max, range, equal_to, regexp, any, none and unique.
//
// unique resolves its store through a LookupFactory registered with
// WithLookup. The target handed to the factory defaults to the rule name.
//
//	set, err := ruleset.LoadFile("rules.yaml",
//	    ruleset.WithLookup("redis", func(target string) (validator.Lookup, error) {
//	        return redis.NewSetLookup(client, "rulechain:unique:"+target)
//	    }),
//	)
//	res := set.Check(ctx, "username", "bob")
//
// Documents are YAML. JSON documents go through ParseJSON, or LoadFile when the
// file name ends with ".json".
package ruleset
