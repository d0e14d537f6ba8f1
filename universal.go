package categories

// Universal contains every value. It is the empty All fold.
var Universal = NewFold(All)

// Nothing contains no value. It is Universal's complement.
var Nothing = Universal.Invert()
