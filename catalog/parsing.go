package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/andreaschandra/fishpond-validator/model"
	"github.com/andreaschandra/fishpond-validator/util"
	"github.com/venicegeo/geojson-go/geojson"
)

func parseSearchResults(context *Context, body []byte) ([]model.SceneCandidate, error) {
	itemCollection, err := rawBytesToFeatureCollection(context, body)
	if err != nil {
		return nil, err
	}

	// GeoJSON parsing drops the STAC-specific item fields, so pull those out
	// of the raw body in a second pass
	var fields itemFieldsResults
	if err = json.Unmarshal(body, &fields); err != nil {
		return nil, util.LogSimpleErr(context, "Failed to unmarshal STAC item fields.", err)
	}

	candidates := make([]model.SceneCandidate, len(itemCollection.Features))
	for i, feature := range itemCollection.Features {
		candidate, err := sceneCandidateFromFeature(feature)
		if err != nil {
			return nil, util.LogSimpleErr(context, fmt.Sprintf("Failed to interpret catalog item %v.", feature.IDStr()), err)
		}
		if i < len(fields.Features) {
			candidate.Collection = fields.Features[i].Collection
			candidate.Assets = make(map[string]string, len(fields.Features[i].Assets))
			for key, asset := range fields.Features[i].Assets {
				candidate.Assets[key] = asset.Href
			}
		}
		candidates[i] = *candidate
	}

	return candidates, nil
}

func rawBytesToFeatureCollection(context *Context, body []byte) (*geojson.FeatureCollection, error) {
	var (
		itemCollection    *geojson.FeatureCollection
		geoJSONParsedData interface{}
		ok                bool
		err               error
	)
	if geoJSONParsedData, err = geojson.Parse(body); err != nil {
		err = util.LogSimpleErr(context, fmt.Sprintf("Failed to parse GeoJSON.\n%v", string(body)), err)
		return nil, err
	}

	if itemCollection, ok = geoJSONParsedData.(*geojson.FeatureCollection); !ok {
		ctErr := util.Error{SimpleMsg: fmt.Sprintf("Expected a FeatureCollection and got %T", geoJSONParsedData), Response: string(body)}
		err = ctErr.Log(context, "")
		return nil, err
	}

	return itemCollection, nil
}

func sceneCandidateFromFeature(feature *geojson.Feature) (*model.SceneCandidate, error) {
	acquiredDate, err := model.ParseSceneTime(feature.PropertyString("datetime"))
	if err != nil {
		return nil, err
	}

	bbox := feature.Bbox
	if len(bbox) < 4 {
		bbox = feature.ForceBbox()
	}

	return &model.SceneCandidate{
		ID:           feature.IDStr(),
		Platform:     feature.PropertyString("platform"),
		AcquiredDate: acquiredDate,
		Bbox:         bbox,
	}, nil
}
