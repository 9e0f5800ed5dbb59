package domain

// Builtins is a registry of core module names.
type Builtins map[string]struct{}

// NewBuiltins returns a registry holding the given names.
func NewBuiltins(names ...string) Builtins {
	b := make(Builtins, len(names))
	for _, n := range names {
		b[n] = struct{}{}
	}
	return b
}

// Has reports whether name is a core module.
func (b Builtins) Has(name string) bool {
	_, ok := b[name]
	return ok
}

// NodeBuiltins lists the Node.js core modules, including their public subpaths.
// Modules that only exist behind the node: scheme (node:test, node:sqlite) are
// recognized by the scheme and need no entry here.
var NodeBuiltins = NewBuiltins(
	"_http_agent",
	"_http_client",
	"_http_common",
	"_http_incoming",
	"_http_outgoing",
	"_http_server",
	"_stream_duplex",
	"_stream_passthrough",
	"_stream_readable",
	"_stream_transform",
	"_stream_wrap",
	"_stream_writable",
	"_tls_common",
	"_tls_wrap",
	"assert",
	"assert/strict",
	"async_hooks",
	"buffer",
	"child_process",
	"cluster",
	"console",
	"constants",
	"crypto",
	"dgram",
	"diagnostics_channel",
	"dns",
	"dns/promises",
	"domain",
	"events",
	"fs",
	"fs/promises",
	"http",
	"http2",
	"https",
	"inspector",
	"inspector/promises",
	"module",
	"net",
	"os",
	"path",
	"path/posix",
	"path/win32",
	"perf_hooks",
	"process",
	"punycode",
	"querystring",
	"readline",
	"readline/promises",
	"repl",
	"stream",
	"stream/consumers",
	"stream/promises",
	"stream/web",
	"string_decoder",
	"sys",
	"timers",
	"timers/promises",
	"tls",
	"trace_events",
	"tty",
	"url",
	"util",
	"util/types",
	"v8",
	"vm",
	"wasi",
	"worker_threads",
	"zlib",
)
