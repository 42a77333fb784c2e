package numeral

// DummyTables exposes the Latin-letter test tables to external tests.
var DummyTables = dummyTables
