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

const defaultDevolucoesTableName = "devolucoes"

type devolucaoProdutoItem struct {
	Nome       string `dynamodbav:"nome"`
	Quantidade int    `dynamodbav:"quantidade"`
}

type devolucaoItem struct {
	UsuarioID         string                 `dynamodbav:"usuario_id"`
	ID                string                 `dynamodbav:"id"`
	NotaFiscalEntrada string                 `dynamodbav:"nota_fiscal_entrada"`
	Distribuidora     string                 `dynamodbav:"distribuidora"`
	Motivo            string                 `dynamodbav:"motivo"`
	Produtos          []devolucaoProdutoItem `dynamodbav:"produtos"`
	DataRealizada     string                 `dynamodbav:"data_realizada"`
	Protocolo         string                 `dynamodbav:"protocolo,omitempty"`
	NFDNumero         string                 `dynamodbav:"nfd_numero,omitempty"`
	NFDValor          string                 `dynamodbav:"nfd_valor,omitempty"`
	DataColeta        string                 `dynamodbav:"data_coleta,omitempty"`
	Status            string                 `dynamodbav:"status"`
}

// DevolucaoDynamoRepository persists Devolucao entities in DynamoDB.
//
// Table requirements:
//   - PK: usuario_id (string)
//   - SK: id (string)
//
// Scoping every key under usuario_id makes cross-tenant access impossible
// to express at this layer.
type DevolucaoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDevolucaoRepository = (*DevolucaoDynamoRepository)(nil)

func NewDevolucaoDynamoRepository(ddb *dynamodb.Client) *DevolucaoDynamoRepository {
	return &DevolucaoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEVOLUCOES_TABLE", defaultDevolucoesTableName),
	}
}

func (r *DevolucaoDynamoRepository) Create(ctx context.Context, d entities.Devolucao) (entities.Devolucao, error) {
	it := toDevolucaoItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Devolucao{}, err
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
		return entities.Devolucao{}, err
	}
	return d, nil
}

func (r *DevolucaoDynamoRepository) GetByID(ctx context.Context, usuarioID, id string) (entities.Devolucao, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"usuario_id": &types.AttributeValueMemberS{Value: usuarioID},
			"id":         &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Devolucao{}, err
	}
	if len(out.Item) == 0 {
		return entities.Devolucao{}, nil
	}

	var it devolucaoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Devolucao{}, err
	}
	return fromDevolucaoItem(it), nil
}

func (r *DevolucaoDynamoRepository) List(ctx context.Context, usuarioID string) ([]entities.Devolucao, error) {
	var devolucoes []entities.Devolucao
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
			var it devolucaoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			devolucoes = append(devolucoes, fromDevolucaoItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return devolucoes, nil
}

func (r *DevolucaoDynamoRepository) Update(ctx context.Context, d entities.Devolucao) (entities.Devolucao, error) {
	it := toDevolucaoItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Devolucao{}, err
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
			return entities.Devolucao{}, nil
		}
		return entities.Devolucao{}, err
	}
	return d, nil
}

func (r *DevolucaoDynamoRepository) Delete(ctx context.Context, usuarioID, id string) (bool, error) {
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

func toDevolucaoItem(d entities.Devolucao) devolucaoItem {
	produtos := make([]devolucaoProdutoItem, 0, len(d.Produtos))
	for _, p := range d.Produtos {
		produtos = append(produtos, devolucaoProdutoItem{Nome: p.Nome, Quantidade: p.Quantidade})
	}

	it := devolucaoItem{
		UsuarioID:         d.UsuarioID,
		ID:                d.ID,
		NotaFiscalEntrada: d.NotaFiscalEntrada,
		Distribuidora:     d.Distribuidora,
		Motivo:            d.Motivo,
		Produtos:          produtos,
		DataRealizada:     d.DataRealizada.UTC().Format(time.RFC3339Nano),
		Protocolo:         d.Protocolo,
		NFDNumero:         d.NFDNumero,
		DataColeta:        d.DataColeta,
		Status:            string(d.Status),
	}
	if d.NFDValor != 0 {
		it.NFDValor = floatToString(d.NFDValor)
	}
	return it
}

func fromDevolucaoItem(it devolucaoItem) entities.Devolucao {
	produtos := make([]entities.DevolucaoProduto, 0, len(it.Produtos))
	for _, p := range it.Produtos {
		produtos = append(produtos, entities.DevolucaoProduto{Nome: p.Nome, Quantidade: p.Quantidade})
	}

	dataRealizada, _ := time.Parse(time.RFC3339Nano, it.DataRealizada)
	nfdValor, _ := strconv.ParseFloat(it.NFDValor, 64)

	return entities.Devolucao{
		ID:                it.ID,
		UsuarioID:         it.UsuarioID,
		NotaFiscalEntrada: it.NotaFiscalEntrada,
		Distribuidora:     it.Distribuidora,
		Motivo:            it.Motivo,
		Produtos:          produtos,
		DataRealizada:     dataRealizada,
		Protocolo:         it.Protocolo,
		NFDNumero:         it.NFDNumero,
		NFDValor:          nfdValor,
		DataColeta:        it.DataColeta,
		Status:            entities.StatusDevolucao(it.Status),
	}
}
