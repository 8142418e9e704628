package db

import (
	"strconv"

	"github.com/jsphweid/fingerdex/constants"
	"github.com/jsphweid/fingerdex/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetFingeringAnnotations fetches stored fixed-fingering annotations
// for the given piece ids. Each item keys a piece id (PK) to a list of
// {Index, Finger} pairs applied before prediction.
func GetFingeringAnnotations(pieceIds []string) map[string][]model.Annotation {
	if len(pieceIds) > 10 {
		panic("Not supposed to pass in more than 10 piece ids!")
	}

	res := make(map[string][]model.Annotation)

	if len(pieceIds) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, pieceId := range pieceIds {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(pieceId),
		}
		keys = append(keys, key)
	}

	endpoint := "http://localhost:8000"
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	table := constants.GetAnnotationsTable()
	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[table] {
		var annotations []model.Annotation
		for _, av := range v["Annotations"].L {
			var a model.Annotation
			a.Index, _ = strconv.Atoi(*av.M["Index"].N)
			a.Finger, _ = strconv.Atoi(*av.M["Finger"].N)
			annotations = append(annotations, a)
		}
		res[*v["PK"].S] = annotations
	}

	return res
}
