// Package model defines the answer set collected by the kit wizard. The
// Configuration value is immutable once built: NewConfiguration trims,
// lower-cases and de-duplicates tags and orders them by catalog position so
// two equal answer sets always render the same artifacts. Static catalog
// tables expose the labels, descriptions and sensitivity/priority
// classifications shown by the wizard and embedded in the generated README.
package model
