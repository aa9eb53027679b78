package core

// Entity is an opaque handle for a render-facing record set
// Zero is never issued and means "no entity"
type Entity uint64
