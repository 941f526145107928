package predicate

import "time"

// BuiltinOption configures Builtin.
type BuiltinOption func(*builtinConfig)

type builtinConfig struct {
	resolver    Resolver
	dnsTimeout  time.Duration
	network     bool
	phoneRegion string
}

// WithResolver sets the resolver used by url_exists.
func WithResolver(r Resolver) BuiltinOption {
	return func(c *builtinConfig) {
		if r != nil {
			c.resolver = r
		}
	}
}

func WithDNSTimeout(d time.Duration) BuiltinOption {
	return func(c *builtinConfig) {
		if d > 0 {
			c.dnsTimeout = d
		}
	}
}

// WithoutNetwork leaves url_exists unregistered, for hermetic environments.
func WithoutNetwork() BuiltinOption {
	return func(c *builtinConfig) { c.network = false }
}

// WithPhoneRegion sets the default region of the phone predicate.
func WithPhoneRegion(region string) BuiltinOption {
	return func(c *builtinConfig) { c.phoneRegion = region }
}

// Builtin returns a new registry holding the standard predicate library.
func Builtin(opts ...BuiltinOption) *Registry {
	cfg := builtinConfig{
		dnsTimeout: DefaultDNSTimeout,
		network:    true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := NewRegistry()
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	must(r.RegisterFactory("required", Required))
	must(r.RegisterFactory("min_len", MinLen))
	must(r.RegisterFactory("max_len", MaxLen))
	must(r.RegisterFactory("exact_len", ExactLen))
	must(r.RegisterFactory("in_range", InRange, "in_range", "min_num", "max_num", "not_valid_range"))
	must(r.RegisterFactory("contains", Contains))
	must(r.RegisterFactory("contains_list", ContainsList))
	must(r.RegisterFactory("doesnt_contain_list", DoesntContainList))
	must(r.RegisterFactory("starts", Starts))

	must(r.RegisterFactory("alpha", Alpha))
	must(r.RegisterFactory("alpha_space", AlphaSpace))
	must(r.RegisterFactory("alpha_numeric", AlphaNumeric))
	must(r.RegisterFactory("alpha_numeric_space", AlphaNumericSpace))
	must(r.RegisterFactory("alpha_dash", AlphaDash))

	must(r.RegisterFactory("numeric", Numeric))
	must(r.RegisterFactory("integer", Integer))
	must(r.RegisterFactory("boolean", Boolean))
	must(r.RegisterFactory("float", Float))

	must(r.RegisterFactory("email", Email))
	must(r.RegisterFactory("url", URL))
	must(r.RegisterFactory("ip", IP))
	must(r.RegisterFactory("ipv4", IPv4))
	must(r.RegisterFactory("ipv6", IPv6))
	if cfg.network {
		must(r.RegisterFactory("url_exists", URLExists(cfg.resolver, cfg.dnsTimeout)))
	}

	must(r.RegisterFactory("guidv4", GUIDv4))
	must(r.RegisterFactory("uuid", UUID))
	must(r.RegisterFactory("cc", CreditCard))
	must(r.RegisterFactory("name", Name))
	must(r.RegisterFactory("street_address", StreetAddress))
	must(r.RegisterFactory("date", Date))
	must(r.RegisterFactory("iban", IBAN))
	must(r.RegisterFactory("phone_number", PhoneNumber))
	must(r.RegisterFactory("phone", Phone(cfg.phoneRegion)))
	must(r.RegisterFactory("regex", Regex))
	must(r.RegisterFactory("json_string", JSONString))

	return r
}
