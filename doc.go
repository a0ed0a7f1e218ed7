// Package stationicon renders station icons for transit maps.
//
// # Overview
//
// A station icon is a round badge, stretched into a capsule when several
// parallel lines cross the station, plus a native-script name and a Latin
// name placed around it by a compass directive. Interchange clusters are a
// separate picture: colored line stubs converging on one point, each with
// its two names.
//
// Drawing and text rendering are done by [github.com/gogpu/gg].
//
// # Quick Start
//
//	r, err := stationicon.NewRenderer(
//	    stationicon.WithResultDir("result"),
//	    stationicon.WithNativeFontFile("font/SourceHanSerifTC-Bold.otf"),
//	    stationicon.WithLatinFontFile("font/FreeSansBold.ttf"),
//	)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	shape, err := r.GenerateStation(ctx, stationicon.Station{
//	    Key:        "central",
//	    NativeName: "中環",
//	    LatinName:  "Central",
//	    Placement:  stationicon.PlaceE,
//	    Angle:      45,
//	    LineCount:  2,
//	    Thickness:  3,
//	})
//	// shape.Centers holds one anchor point per line.
//
// # Geometry
//
// Badge coordinates have the origin at the top-left, x to the right and y
// down. Angles are in degrees: 0 stretches the badge to the right, 90
// straight down. A single-line badge is 205x205 and its only anchor is at
// (102.5, 102.5); each extra line adds 115 pixels along the badge axis.
//
// # Output
//
// GenerateStation writes __station__<key>.png and GenerateCluster writes
// __interchange.png into the result directory. Files are written through a
// temporary name and renamed, so a failed render never leaves a partial
// image. StationImage and ClusterImage return the image without writing.
package stationicon

// Version is the current version of the library.
const Version = "0.3.0"
