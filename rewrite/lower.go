package rewrite

import "github.com/The0x539/eyesight-xml2py/ir"

// LowerVectorAverage replaces every vector average, which Blender lacks,
// with an add followed by a scale by one half. The original node keeps its
// name and inbound links and becomes the add; its outbound links move to a
// new scale node named after it.
func LowerVectorAverage(doc *ir.Document) error {
	for _, owned := range doc.Shaders() {
		lowerShaderAverages(owned.Shader)
	}
	return nil
}

func lowerShaderAverages(s *ir.Shader) {
	// Appended nodes are never averages, so iterating the original length
	// is enough.
	n := len(s.Nodes)
	for i := 0; i < n; i++ {
		avg, ok := s.Nodes[i].(*ir.VectorMath)
		if !ok || avg.Operation != ir.VectorAverage {
			continue
		}

		avg.Operation = ir.VectorAdd
		scale := &ir.VectorMath{
			Name:      uniqueName(s, avg.Name+"_average"),
			Operation: ir.VectorScale,
			Inputs:    []ir.NodeInput{{Name: "Scale", Value: ir.FloatLiteral(0.5)}},
		}

		for j := range s.Links {
			if s.Links[j].FromNode == avg.Name {
				s.Links[j].FromNode = scale.Name
			}
		}
		s.Nodes = append(s.Nodes, scale)
		s.Links = append(s.Links, ir.Link{
			FromNode:   avg.Name,
			FromSocket: "Vector",
			ToNode:     scale.Name,
			ToSocket:   "Vector1",
		})
	}
}
