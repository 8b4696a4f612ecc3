// Package distributorservice manages external ticket vendors and builds
// purchase URLs from their search-address templates.
package distributorservice
