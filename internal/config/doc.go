// Package config loads the YAML configuration of a license run.
//
// A configuration file looks like:
//
//	action: reformat          # check | reformat | update | remove
//	licenseFile: LICENSE.tmpl # relative to the config file
//	propertyValues:
//	  year: "2024"
//	  author: Acme Corp.
//	paths:
//	  - ./...
//	jobs: 4
//	log:
//	  level: info
//	  format: console
//
// Unset fields take their defaults. Unresolved ${variables} keep their literal
// spelling in the inserted license.
package config
