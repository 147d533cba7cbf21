package repositories

// validCoordinateExpr keeps rows whose coordinate pair is present,
// finite, and inside the WGS84 envelope. The stored datasets contain
// NaN markers for unresolved locations, hence the explicit casts.
const validCoordinateExpr = "longitude IS NOT NULL AND latitude IS NOT NULL" +
	" AND longitude <> 'NaN'::float8 AND latitude <> 'NaN'::float8" +
	" AND longitude BETWEEN -180 AND 180 AND latitude BETWEEN -90 AND 90"
