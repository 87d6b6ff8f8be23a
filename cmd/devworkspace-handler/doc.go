// package main includes tests for devworkspace-handler covering (at least) the CLI packages.
// You can run the tests on this package and get the coverage of these tests
// across the entire sources with the commands:
//
// $ go test -v -coverpkg=./... -coverprofile=profile.cov ./cmd/devworkspace-handler
// $ go tool cover -html profile.cov
package main
