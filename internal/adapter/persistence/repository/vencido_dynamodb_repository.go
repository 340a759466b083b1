package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"farmagest/internal/domain/entities"
	"farmagest/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVencidosTableName = "vencidos"

type vencidoItem struct {
	UsuarioID        string `dynamodbav:"usuario_id"`
	ID               string `dynamodbav:"id"`
	Medicamento      string `dynamodbav:"medicamento"`
	Laboratorio      string `dynamodbav:"laboratorio"`
	Quantidade       int    `dynamodbav:"quantidade"`
	Lote             string `dynamodbav:"lote"`
	CodigoBarras     string `dynamodbav:"codigo_barras"`
	MSRegistro       string `dynamodbav:"ms_registro"`
	NCM              string `dynamodbav:"ncm"`
	CEST             string `dynamodbav:"cest"`
	CFOP             string `dynamodbav:"cfop"`
	PrecoUnitario    string `dynamodbav:"preco_unitario"`
	DataCriacao      string `dynamodbav:"data_criacao"`
	DataUltimaEdicao string `dynamodbav:"data_ultima_edicao"`
}

// VencidoDynamoRepository persists Vencido entities in DynamoDB.
//
// Table requirements:
//   - PK: usuario_id (string)
//   - SK: id (string)
type VencidoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVencidoRepository = (*VencidoDynamoRepository)(nil)

func NewVencidoDynamoRepository(ddb *dynamodb.Client) *VencidoDynamoRepository {
	return &VencidoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VENCIDOS_TABLE", defaultVencidosTableName),
	}
}

func (r *VencidoDynamoRepository) Create(ctx context.Context, v entities.Vencido) (entities.Vencido, error) {
	av, err := attributevalue.MarshalMap(toVencidoItem(v))
	if err != nil {
		return entities.Vencido{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Vencido{}, err
	}
	return v, nil
}

func (r *VencidoDynamoRepository) GetByID(ctx context.Context, usuarioID, id string) (entities.Vencido, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"usuario_id": &types.AttributeValueMemberS{Value: usuarioID},
			"id":         &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vencido{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vencido{}, nil
	}

	var it vencidoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vencido{}, err
	}
	return fromVencidoItem(it), nil
}

func (r *VencidoDynamoRepository) List(ctx context.Context, usuarioID string) ([]entities.Vencido, error) {
	var vencidos []entities.Vencido
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#uid = :uid"),
			ExpressionAttributeNames: map[string]string{
				"#uid": "usuario_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":uid": &types.AttributeValueMemberS{Value: usuarioID},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it vencidoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			vencidos = append(vencidos, fromVencidoItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return vencidos, nil
}

func (r *VencidoDynamoRepository) Update(ctx context.Context, v entities.Vencido) (entities.Vencido, error) {
	av, err := attributevalue.MarshalMap(toVencidoItem(v))
	if err != nil {
		return entities.Vencido{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Vencido{}, nil
		}
		return entities.Vencido{}, err
	}
	return v, nil
}

func (r *VencidoDynamoRepository) Delete(ctx context.Context, usuarioID, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"usuario_id": &types.AttributeValueMemberS{Value: usuarioID},
			"id":         &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toVencidoItem(v entities.Vencido) vencidoItem {
	return vencidoItem{
		UsuarioID:        v.UsuarioID,
		ID:               v.ID,
		Medicamento:      v.Medicamento,
		Laboratorio:      v.Laboratorio,
		Quantidade:       v.Quantidade,
		Lote:             v.Lote,
		CodigoBarras:     v.CodigoBarras,
		MSRegistro:       v.MSRegistro,
		NCM:              v.NCM,
		CEST:             v.CEST,
		CFOP:             v.CFOP,
		PrecoUnitario:    floatToString(v.PrecoUnitario),
		DataCriacao:      v.DataCriacao.UTC().Format(time.RFC3339Nano),
		DataUltimaEdicao: v.DataUltimaEdicao.UTC().Format(time.RFC3339Nano),
	}
}

func fromVencidoItem(it vencidoItem) entities.Vencido {
	preco, _ := strconv.ParseFloat(it.PrecoUnitario, 64)
	dataCriacao, _ := time.Parse(time.RFC3339Nano, it.DataCriacao)
	dataUltimaEdicao, _ := time.Parse(time.RFC3339Nano, it.DataUltimaEdicao)

	return entities.Vencido{
		ID:               it.ID,
		UsuarioID:        it.UsuarioID,
		Medicamento:      it.Medicamento,
		Laboratorio:      it.Laboratorio,
		Quantidade:       it.Quantidade,
		Lote:             it.Lote,
		CodigoBarras:     it.CodigoBarras,
		MSRegistro:       it.MSRegistro,
		NCM:              it.NCM,
		CEST:             it.CEST,
		CFOP:             it.CFOP,
		PrecoUnitario:    preco,
		DataCriacao:      dataCriacao,
		DataUltimaEdicao: dataUltimaEdicao,
	}
}
