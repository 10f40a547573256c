// Package app implements the recordkit commands on top of the public collection,
// record and file packages. It loads datasets through a cached loader,
// renders results in the configured format and reads and writes files on disk.
package app
