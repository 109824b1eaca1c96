/*
 * xyzplot.go, part of goxyz.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package xyzplot plots numeric per-frame metadata of a trajectory, such
//as the Energy key most extended-XYZ writers emit, against the frame
//index.
package xyzplot

import (
	"fmt"
	"log"

	xyz "github.com/rmera/goxyz"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Metadata plots the numeric comment-line key (Real or Int) of the given
// frames against the frame index, and saves the plot to plotname.png.
// Frames without the key, or with a non-numeric value for it, are skipped
// with a logged head-up; if no frame has a numeric value for the key, an
// error is returned instead of an empty plot.
func Metadata(frames []*xyz.Frame, key, title, plotname string) error {
	pts := make(plotter.XYs, 0, len(frames))
	for i, f := range frames {
		v, ok := f.Extra()[key]
		if !ok {
			log.Printf("goxyz/xyzplot: frame %d has no %q key, skipped", i, key) //just a head-up
			continue
		}
		var y float64
		switch v.Kind() {
		case xyz.KindReal:
			y = v.Float64()
		case xyz.KindInt:
			y = float64(v.Int())
		default:
			log.Printf("goxyz/xyzplot: frame %d: %q is not numeric, skipped", i, key) //just a head-up
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i), Y: y})
	}
	if len(pts) == 0 {
		return fmt.Errorf("goxyz/xyzplot: no frame has a numeric %q key", key)
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = key
	p.Add(plotter.NewGrid())
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	p.Add(l, s)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}
