package types

// Version is the canonical project version.
// The CLI and the report schema share this version per the lockstep
// versioning policy.
//
// This version is authoritative. Report consumers must reference this constant.
const Version = "0.3.0"
