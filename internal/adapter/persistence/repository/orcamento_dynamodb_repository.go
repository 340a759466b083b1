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

const (
	defaultOrcamentosTableName = "orcamentos"
	orcamentosDataCriacaoIndex = "data_criacao-index"
)

type medicamentoItem struct {
	ID                   string `dynamodbav:"id"`
	Nome                 string `dynamodbav:"nome"`
	PrincipioAtivo       string `dynamodbav:"principio_ativo,omitempty"`
	QuantidadeMensal     int    `dynamodbav:"quantidade_mensal"`
	QuantidadeTratamento int    `dynamodbav:"quantidade_tratamento"`
	ValorUnitario        string `dynamodbav:"valor_unitario"`
}

type orcamentoItem struct {
	UsuarioID        string            `dynamodbav:"usuario_id"`
	ID               string            `dynamodbav:"id"`
	Identificador    string            `dynamodbav:"paciente_identificador"`
	CPF              string            `dynamodbav:"paciente_cpf,omitempty"`
	Medicamentos     []medicamentoItem `dynamodbav:"medicamentos"`
	Status           string            `dynamodbav:"status"`
	DataCriacao      string            `dynamodbav:"data_criacao"`
	DataUltimaEdicao string            `dynamodbav:"data_ultima_edicao"`
}

// OrcamentoDynamoRepository persists Orcamento entities in DynamoDB.
//
// Table requirements:
//   - PK: usuario_id (string)
//   - SK: id (string)
//   - LSI: data_criacao-index (SK: data_criacao) for newest-first listing
type OrcamentoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrcamentoRepository = (*OrcamentoDynamoRepository)(nil)

func NewOrcamentoDynamoRepository(ddb *dynamodb.Client) *OrcamentoDynamoRepository {
	return &OrcamentoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORCAMENTOS_TABLE", defaultOrcamentosTableName),
	}
}

func (r *OrcamentoDynamoRepository) Save(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	it := toOrcamentoItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Orcamento{}, err
	}

	// Unconditional put: the dashboard rewrites the whole budget on save.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Orcamento{}, err
	}
	return o, nil
}

func (r *OrcamentoDynamoRepository) GetByID(ctx context.Context, usuarioID, id string) (entities.Orcamento, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"usuario_id": &types.AttributeValueMemberS{Value: usuarioID},
			"id":         &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Orcamento{}, err
	}
	if len(out.Item) == 0 {
		return entities.Orcamento{}, nil
	}

	var it orcamentoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Orcamento{}, err
	}
	return fromOrcamentoItem(it), nil
}

func (r *OrcamentoDynamoRepository) List(ctx context.Context, usuarioID string, limit int32, cursor string) (interfaces.PaginaOrcamentos, error) {
	startKey, err := decodeCursor(cursor)
	if err != nil {
		return interfaces.PaginaOrcamentos{}, err
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(orcamentosDataCriacaoIndex),
		KeyConditionExpression: aws.String("#uid = :uid"),
		ExpressionAttributeNames: map[string]string{
			"#uid": "usuario_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: usuarioID},
		},
		ScanIndexForward:  aws.Bool(false),
		Limit:             aws.Int32(limit),
		ExclusiveStartKey: startKey,
	})
	if err != nil {
		return interfaces.PaginaOrcamentos{}, err
	}

	pagina := interfaces.PaginaOrcamentos{}
	for _, raw := range out.Items {
		var it orcamentoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return interfaces.PaginaOrcamentos{}, err
		}
		pagina.Itens = append(pagina.Itens, fromOrcamentoItem(it))
	}

	pagina.Cursor, err = encodeCursor(out.LastEvaluatedKey)
	if err != nil {
		return interfaces.PaginaOrcamentos{}, err
	}
	return pagina, nil
}

func (r *OrcamentoDynamoRepository) Delete(ctx context.Context, usuarioID, id string) (bool, error) {
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

func toOrcamentoItem(o entities.Orcamento) orcamentoItem {
	medicamentos := make([]medicamentoItem, 0, len(o.Medicamentos))
	for _, m := range o.Medicamentos {
		medicamentos = append(medicamentos, medicamentoItem{
			ID:                   m.ID,
			Nome:                 m.Nome,
			PrincipioAtivo:       m.PrincipioAtivo,
			QuantidadeMensal:     m.QuantidadeMensal,
			QuantidadeTratamento: m.QuantidadeTratamento,
			ValorUnitario:        floatToString(m.ValorUnitario),
		})
	}
	return orcamentoItem{
		UsuarioID:        o.UsuarioID,
		ID:               o.ID,
		Identificador:    o.Paciente.Identificador,
		CPF:              o.Paciente.CPF,
		Medicamentos:     medicamentos,
		Status:           string(o.Status),
		DataCriacao:      o.DataCriacao.UTC().Format(time.RFC3339Nano),
		DataUltimaEdicao: o.DataUltimaEdicao.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrcamentoItem(it orcamentoItem) entities.Orcamento {
	medicamentos := make([]entities.Medicamento, 0, len(it.Medicamentos))
	for _, m := range it.Medicamentos {
		valor, _ := strconv.ParseFloat(m.ValorUnitario, 64)
		medicamentos = append(medicamentos, entities.Medicamento{
			ID:                   m.ID,
			Nome:                 m.Nome,
			PrincipioAtivo:       m.PrincipioAtivo,
			QuantidadeMensal:     m.QuantidadeMensal,
			QuantidadeTratamento: m.QuantidadeTratamento,
			ValorUnitario:        valor,
		})
	}

	dataCriacao, _ := time.Parse(time.RFC3339Nano, it.DataCriacao)
	dataUltimaEdicao, _ := time.Parse(time.RFC3339Nano, it.DataUltimaEdicao)

	return entities.Orcamento{
		ID:               it.ID,
		UsuarioID:        it.UsuarioID,
		Paciente:         entities.Paciente{Identificador: it.Identificador, CPF: it.CPF},
		Medicamentos:     medicamentos,
		Status:           entities.OrcamentoStatus(it.Status),
		DataCriacao:      dataCriacao,
		DataUltimaEdicao: dataUltimaEdicao,
	}
}
