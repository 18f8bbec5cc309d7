// Package publish uploads written strings files to object storage.
//
// A published file keeps its place in the res tree below the configured
// prefix, e.g. res/values-fr/strings.xml, so a build job can sync the
// bucket straight into an Android project.
//
// # HTTP Endpoints
//
//   - GET /published : lists the published files.
package publish
