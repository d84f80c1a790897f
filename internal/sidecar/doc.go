// Package sidecar renders script bodies into the flat, human-editable .ctl
// format and reads them back.
//
// A sidecar starts with an informational comment header followed by one block
// per script:
//
//	//START_SCRIPT: <key>
//	<body>
//	//END_SCRIPT: <key>
//
// Bodies are written verbatim. Marker-like lines inside a body are not
// escaped, so a body containing a line that starts with a marker does not
// survive a round trip.
package sidecar
