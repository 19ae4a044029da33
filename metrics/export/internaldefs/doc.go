// Package internaldefs holds the shared counter definitions used by the
// metrics exporters. It is not part of the public API.
package internaldefs
