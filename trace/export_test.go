package trace

// Pick is exported for testing.
var Pick = pick
