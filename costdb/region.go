package costdb

import "fmt"

// Region selects which supply-systems cost database to read.
type Region string

const (
	RegionCH Region = "ch" // Switzerland
	RegionSG Region = "sg" // Singapore
)

func RegionFromString(s string) (Region, error) {
	switch s {
	case "ch":
		return RegionCH, nil
	case "sg":
		return RegionSG, nil
	default:
		return "", fmt.Errorf("invalid region %q", s)
	}
}

/*
Get the file name of the supply-systems cost database for the region.

	Args:
	    rgn: region

	Returns:
	    file name of the cost database (CSV file, extension included)
*/
func _get_filename(rgn Region) string {
	return map[Region]string{
		RegionCH: "supply_systems_ch.csv",
		RegionSG: "supply_systems_sg.csv",
	}[rgn]
}
