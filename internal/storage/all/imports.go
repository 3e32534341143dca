// Package all links every storage backend into the binary. Importing it
// for side effects registers the backends with the storage factory.
package all

import (
	_ "exametl/internal/storage/postgres"
	_ "exametl/internal/storage/sqlite"
)
