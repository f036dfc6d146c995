// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/xml"

	"github.com/pdiddy/recipe-parser/pkg/types"
)

// The XML document layout:
//
//	<recipe id="1">
//	    <metadata><title/><author/><created/></metadata>
//	    <content>
//	        <lead/>
//	        <ingredients><ingredient><amount/><unit/><item/></ingredient></ingredients>
//	        <method><step/></method>
//	    </content>
//	</recipe>
//
// Absent optional fields are left out.
type xmlRecipe struct {
	XMLName  xml.Name    `xml:"recipe"`
	ID       int         `xml:"id,attr"`
	Metadata xmlMetadata `xml:"metadata"`
	Content  xmlContent  `xml:"content"`
}

type xmlMetadata struct {
	Title   string  `xml:"title"`
	Author  *string `xml:"author,omitempty"`
	Created *string `xml:"created,omitempty"`
}

type xmlContent struct {
	Lead        *string        `xml:"lead,omitempty"`
	Ingredients xmlIngredients `xml:"ingredients"`
	Method      xmlMethod      `xml:"method"`
}

type xmlIngredients struct {
	Ingredient []xmlIngredient `xml:"ingredient"`
}

type xmlMethod struct {
	Step []string `xml:"step"`
}

type xmlIngredient struct {
	Amount *float64 `xml:"amount,omitempty"`
	Unit   *string  `xml:"unit,omitempty"`
	Item   string   `xml:"item"`
}

func toXML(r *types.Recipe) xmlRecipe {
	x := xmlRecipe{
		ID: r.ID,
		Metadata: xmlMetadata{
			Title:  r.Title,
			Author: r.Author.Ptr(),
		},
		Content: xmlContent{
			Lead:   r.Lead.Ptr(),
			Method: xmlMethod{Step: r.Steps},
		},
	}
	if d, ok := r.Created.Get(); ok {
		s := d.String()
		x.Metadata.Created = &s
	}
	for _, ing := range r.Ingredients {
		xi := xmlIngredient{
			Amount: ing.Amount.Ptr(),
			Item:   ing.Item,
		}
		if u, ok := ing.Unit.Get(); ok {
			s := string(u)
			xi.Unit = &s
		}
		x.Content.Ingredients.Ingredient = append(x.Content.Ingredients.Ingredient, xi)
	}
	return x
}
